package metrics

// Recorder узкий интерфейс бизнес-метрик, который принимают usecase и сервисы
// nil-safe реализация Nop используется, когда метрики выключены
type Recorder interface {
	ReservationCreated()
	ReservationConflict()
	AvailabilityFallback()
	StatusUpdated(status string)
}

func (m *Metrics) ReservationCreated() {
	m.ReservationsCreated.Inc()
}

func (m *Metrics) ReservationConflict() {
	m.ReservationConflicts.Inc()
}

func (m *Metrics) AvailabilityFallback() {
	m.AvailabilityFallbacks.Inc()
}

func (m *Metrics) StatusUpdated(status string) {
	m.StatusUpdates.WithLabelValues(status).Inc()
}

// Nop реализация Recorder без побочных эффектов
type Nop struct{}

func (Nop) ReservationCreated()   {}
func (Nop) ReservationConflict()  {}
func (Nop) AvailabilityFallback() {}
func (Nop) StatusUpdated(string)  {}

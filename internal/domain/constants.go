package domain

import "time"

// Часовой пояс бизнеса: Мадагаскар, UTC+3 без перехода на летнее время
// Используется фиксированное смещение, чтобы не зависеть от tzdata в контейнере
const (
	BusinessTimezone     = "Indian/Antananarivo"
	businessOffsetSecond = 3 * 60 * 60
)

// BusinessLocation локация, в которой интерпретируются календарные даты и слоты
var BusinessLocation = time.FixedZone(BusinessTimezone, businessOffsetSecond)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Business validation constants
const (
	PhoneDigits       = 9
	MaxNameLength     = 200
	MaxAddressLength  = 500
	MaxNotesLength    = 500
	MinServiceMinutes = 1
	MaxServiceMinutes = 24 * 60
)

// MaxServicePrice верхняя граница цены, помещающаяся в NUMERIC(10,2)
const MaxServicePrice = 99999999.99

// ConfirmationPrefix префикс кода подтверждения, который видит клиент
const ConfirmationPrefix = "RVT-"

// confirmationLength количество символов идентификатора в коде подтверждения
const confirmationLength = 8

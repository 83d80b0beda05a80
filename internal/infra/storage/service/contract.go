package service

import "github.com/rovart/BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

package apperror

// ErrorLogger is the subset of a structured logger needed to report records.
// go-log's ZapEventLogger and zap's SugaredLogger both satisfy it.
type ErrorLogger interface {
	Errorw(msg string, keysAndValues ...any)
}

// Log writes rec at error level.
func Log(log ErrorLogger, rec Record) {
	log.Errorw(rec.Message, "statusCode", rec.StatusCode, "code", rec.Code)
}

// LogAll writes every record in order.
func LogAll(log ErrorLogger, recs []Record) {
	for _, rec := range recs {
		Log(log, rec)
	}
}

package domain

// RecordError descreve a falha de um registro dentro de um lote
type RecordError struct {
	Key     NaturalKey `json:"key"`
	Message string     `json:"message"`
}

// BatchOutcome resume um lote de persistência. Não é persistido, apenas
// retornado e registrado em log.
type BatchOutcome struct {
	Total        int           `json:"total_enviados"`
	Saved        int           `json:"novos_salvos"`
	Duplicates   int           `json:"duplicados_ignorados"`
	Errors       int           `json:"erros"`
	ErrorDetails []RecordError `json:"detalhes_erros,omitempty"`
}

func (o *BatchOutcome) AddError(key NaturalKey, message string) {
	o.Errors++
	o.ErrorDetails = append(o.ErrorDetails, RecordError{Key: key, Message: message})
}

// HasWarnings indica lote parcialmente salvo
func (o BatchOutcome) HasWarnings() bool {
	return o.Errors > 0
}

// Merge soma os contadores de outro lote
func (o *BatchOutcome) Merge(other BatchOutcome) {
	o.Total += other.Total
	o.Saved += other.Saved
	o.Duplicates += other.Duplicates
	o.Errors += other.Errors
	o.ErrorDetails = append(o.ErrorDetails, other.ErrorDetails...)
}

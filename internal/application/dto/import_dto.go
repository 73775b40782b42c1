package dto

// ImportRowError una fila del import masivo que no pudo crearse.
type ImportRowError struct {
	Row     int    `json:"row"` // número de fila en el archivo (1 = primera fila de datos)
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// ImportSummary resultado del import masivo: las filas fallidas no abortan
// el lote, se reportan aparte.
type ImportSummary struct {
	Created int              `json:"created"`
	Failed  []ImportRowError `json:"failed"`
}

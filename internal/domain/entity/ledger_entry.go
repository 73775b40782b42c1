package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operador centinela para asientos generados por el sistema
// (Ersteinrichtung, importaciones masivas).
const SystemOperator = "System"

// Etiquetas de clasificación usadas por el laboratorio en el campo Comment.
// Son descriptivas: el cálculo de volumen nunca depende de ellas.
const (
	CommentInitialStock   = "Ersteinrichtung"
	CommentManualWithdraw = "Manuelle Entnahme"
	CommentManualRefill   = "Manuelle Auffüllung"
	CommentImport         = "Übertrag"
)

// LedgerEntry representa un cambio de volumen registrado en el historial de un
// kit: retiro (Amount negativo), recarga (positivo) o corrección.
// Una vez creado el asiento es inmutable salvo su Amount, que solo se modifica
// vía el motor de ledger para mantener el invariante de replay.
type LedgerEntry struct {
	ID      string
	Date    time.Time       // granularidad de día
	Amount  decimal.Decimal // µl con signo: negativo retiro, positivo recarga
	Person  string          // iniciales del operador o SystemOperator
	Comment string
}

package kit

import "github.com/shopspring/decimal"

// Status clasificación de un kit según su volumen actual frente al umbral.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

var warningFactor = decimal.NewFromFloat(1.5)

// ComputeStatus deriva el estado:
//   - critical si volumen < umbral
//   - warning  si volumen < umbral * 1.5
//   - ok       en el resto
//
// El umbral es un valor vivo: se aplica uniforme sobre todo el estado actual,
// no como hecho histórico por asiento.
func ComputeStatus(currentVolume, threshold decimal.Decimal) Status {
	if currentVolume.LessThan(threshold) {
		return StatusCritical
	}
	if currentVolume.LessThan(threshold.Mul(warningFactor)) {
		return StatusWarning
	}
	return StatusOK
}

// StatusText etiqueta legible para exportaciones y reportes.
func StatusText(s Status) string {
	switch s {
	case StatusCritical:
		return "Kritisch"
	case StatusWarning:
		return "Niedrig"
	default:
		return "OK"
	}
}

var (
	dec33  = decimal.NewFromInt(33)
	dec67  = decimal.NewFromInt(67)
	dec100 = decimal.NewFromInt(100)
	dec2   = decimal.NewFromInt(2)
)

// VisualFillPercent mapea el volumen crudo a la escala visual 0–100 de las
// barras de progreso. No es lineal: el tercio inferior de la escala cubre el
// rango sub-umbral completo y los dos tercios superiores el excedente hasta
// 2×umbral, con tope en 100. Así la zona de peligro ocupa un tamaño constante
// sin importar la capacidad absoluta del kit.
//
//	v <= t: (v/t) * 33
//	v >  t: min(100, 33 + ((v-t)/(2t)) * 67)
func VisualFillPercent(currentVolume, threshold decimal.Decimal) float64 {
	if !threshold.IsPositive() {
		// Sin umbral definido no hay zona de alarma que escalar.
		return 100
	}
	if currentVolume.LessThanOrEqual(threshold) {
		return currentVolume.Div(threshold).Mul(dec33).InexactFloat64()
	}
	surplus := currentVolume.Sub(threshold)
	visual := dec33.Add(surplus.Div(threshold.Mul(dec2)).Mul(dec67))
	if visual.GreaterThan(dec100) {
		return 100
	}
	return visual.InexactFloat64()
}

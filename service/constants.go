package service

const (
	MaxPayoffMonths      = 600  // 50 años
	DebtBalanceTolerance = 0.01 // tolerancia para considerar deuda pagada
	CardMinimumPayment   = 25.0 // piso del pago mínimo de tarjeta

	ScenarioMinimumPayment   = "Minimum Payment"
	ScenarioOptimizedPayment = "Optimized Payment"
	ScenarioConsolidation    = "Consolidation"

	NoConsolidationMessage = "No consolidation offers available for this product"
)

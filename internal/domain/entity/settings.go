package entity

// Settings configuración de la empresa guardada junto al inventario.
type Settings struct {
	CompanyName       string `json:"companyName"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	Currency          string `json:"currency"`
	DateFormat        string `json:"dateFormat"`
}

// DefaultSettings valores usados cuando no hay configuración guardada.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:       "Mi Empresa",
		LowStockThreshold: 10,
		Currency:          "COP",
		DateFormat:        "DD/MM/YYYY",
	}
}

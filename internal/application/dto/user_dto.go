package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ActorResponse identidad del usuario en sesión (sin password).
type ActorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    ActorResponse `json:"user"`
}

// SettingsDTO configuración de la empresa.
type SettingsDTO struct {
	CompanyName       string `json:"company_name"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Currency          string `json:"currency"`
	DateFormat        string `json:"date_format"`
}

// SettingsResult respuesta uniforme de la actualización de configuración.
type SettingsResult struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Settings SettingsDTO `json:"settings"`
}

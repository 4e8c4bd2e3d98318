// Package i18n holds the UI message catalog. Spanish is the default
// application language, English is available as a fallback.
package i18n

import "strings"

const defaultLang = "es"

var catalog = map[string]map[string]string{
	"es": {
		"required":            "Obligatorio",
		"must_be_positive":    "El precio debe ser un número válido mayor a 0",
		"out_of_range":        "Valor fuera de rango",
		"invalid_email":       "Email inválido",
		"invalid_value":       "Valor inválido",
		"passwords_mismatch":  "Las contraseñas no coinciden",
		"connection_error":    "Error de conexión con el servidor",
		"auth_error":          "Email o contraseña incorrectos",
		"retry":               "Reintentar",
		"loading":             "Cargando...",
		"products":            "Productos",
		"customers":           "Clientes",
		"orders":              "Pedidos",
		"sales":               "Ventas",
		"receivables":         "Cuentas por Cobrar",
		"payables":            "Cuentas por Pagar",
		"reports":             "Reportes",
		"dashboard":           "Panel",
		"settings":            "Configuración",
		"billing":             "Facturación",
		"total_revenue":       "Ganancias Totales",
		"pending_deliveries":  "Entregas Pendientes",
		"available_services":  "Servicios Disponibles",
		"mark_paid":           "Marcar Pagado",
		"delete":              "Eliminar",
		"save":                "Guardar",
		"cancel":              "Cancelar",
		"login":               "Iniciar Sesión",
		"logout":              "Cerrar Sesión",
		"confirm_delete":      "¿Estás seguro de que quieres eliminar este registro?",
	},
	"en": {
		"required":            "Required",
		"must_be_positive":    "Price must be a valid number greater than 0",
		"out_of_range":        "Value out of range",
		"invalid_email":       "Invalid email",
		"invalid_value":       "Invalid value",
		"passwords_mismatch":  "Passwords do not match",
		"connection_error":    "Connection error",
		"auth_error":          "Incorrect email or password",
		"retry":               "Retry",
		"loading":             "Loading...",
		"products":            "Products",
		"customers":           "Customers",
		"orders":              "Orders",
		"sales":               "Sales",
		"receivables":         "Receivables",
		"payables":            "Payables",
		"reports":             "Reports",
		"dashboard":           "Dashboard",
		"settings":            "Settings",
		"billing":             "Billing",
		"total_revenue":       "Total Revenue",
		"pending_deliveries":  "Pending Deliveries",
		"available_services":  "Available Services",
		"mark_paid":           "Mark Paid",
		"delete":              "Delete",
		"save":                "Save",
		"cancel":              "Cancel",
		"login":               "Log In",
		"logout":              "Log Out",
		"confirm_delete":      "Are you sure you want to delete this record?",
	},
}

// T translates a message code for a language. Unknown languages fall
// back to Spanish; unknown codes fall back to the code itself.
func T(lang, code string) string {
	if msgs, ok := catalog[lang]; ok {
		if s, ok := msgs[code]; ok {
			return s
		}
	}
	if s, ok := catalog[defaultLang][code]; ok {
		return s
	}
	return code
}

// DetectLanguage picks a supported language from an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(tag, "-;"); i >= 0 {
			tag = tag[:i]
		}
		if _, ok := catalog[tag]; ok {
			return tag
		}
	}
	return defaultLang
}

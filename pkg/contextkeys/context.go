package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB запроса
const DBContextKey = contextKey("db")

// IdentityContextKey - ключ для *auth.Identity аутентифицированного субъекта
const IdentityContextKey = contextKey("identity")

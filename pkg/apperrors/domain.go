package apperrors

import (
	"net/http"
)

/*
Фабрики для ошибок бизнес-логики. Каждая фабрика возвращает новый
экземпляр, чтобы WithDetails не менял общие значения.
*/

// ErrNotFound - ресурс (posting, company) не найден (404)
func ErrNotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrForbidden - у субъекта нет прав владельца или администратора (403)
func ErrForbidden(domain, message string) *AppError {
	return New(CodeForbidden, domain, message, http.StatusForbidden)
}

// ErrConflict - нарушено ограничение уникальности (409)
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidFilter - некорректный параметр поиска (400)
func ErrInvalidFilter(message string) *AppError {
	return New(CodeInvalidFilter, "search", message, http.StatusBadRequest)
}

// ErrStoreUnavailable - хранилище недоступно (503). Повторов здесь нет,
// политика ретраев принадлежит вызывающей стороне.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap(err, CodeStoreUnavailable, "store", "Data store unavailable", http.StatusServiceUnavailable)
}

// ErrRateLimited - превышен лимит запросов (429)
func ErrRateLimited() *AppError {
	return New(CodeRateLimited, "request", "Too many requests", http.StatusTooManyRequests)
}

// ErrInvalidToken - неверный или просроченный токен (401)
func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
}

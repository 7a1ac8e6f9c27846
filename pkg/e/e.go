package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки загрузки каталога
	ErrUnknownCatalogSource = fmt.Errorf("unknown catalog source")
	ErrCacheMiss            = fmt.Errorf("cache miss")
	ErrCatalogSnapshot      = fmt.Errorf("invalid catalog snapshot")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrMissingEnvVariable   = fmt.Errorf("missing required environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidOwnerID       = fmt.Errorf("invalid owner id")
	ErrInvalidCategoryID    = fmt.Errorf("invalid category id")
	ErrInvalidSortColumn    = fmt.Errorf("invalid sort column")
	ErrInvalidSortDirection = fmt.Errorf("invalid sort direction")
	ErrUnknownEvent         = fmt.Errorf("unknown event type")

	// 404 Not Found
	ErrSessionNotFound = fmt.Errorf("session not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

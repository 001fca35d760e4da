package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// noRows сообщает, что запрос не вернул ни одной строки.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// postgresDuplicate сообщает, что ошибка вызвана нарушением уникального ограничения.
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// errors стандартизирует ответы об ошибках HTTP-слоя stories-service.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Маппинг двухступенчатый: ошибка сервиса -> gRPC code -> HTTP.
// Тот же gRPC code используется и для логов gRPC-сервера.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/hacker-stories/internal/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError - единый формат для фронта.
// Code - короткий стабильный код для машиночитаемой обработки на FE.
// Message - безопасное человекочитаемое описание.
// RequestID - прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse - корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// CodeOf возвращает gRPC code для ошибки сервисного слоя.
//
//   - ErrInvalidArgument, ErrUnknownField -> InvalidArgument;
//   - ErrNoHistory, ErrFetchInProgress, ErrNoMorePages -> FailedPrecondition;
//   - ErrFetchFailed -> Unavailable;
//   - ErrSuperseded -> Aborted;
//   - context.Canceled -> Canceled, context.DeadlineExceeded -> DeadlineExceeded;
//   - gRPC-статус -> его код;
//   - прочее -> Internal.
func CodeOf(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrUnknownField):
		return codes.InvalidArgument
	case errors.Is(err, service.ErrNoHistory),
		errors.Is(err, service.ErrFetchInProgress),
		errors.Is(err, service.ErrNoMorePages):
		return codes.FailedPrecondition
	case errors.Is(err, service.ErrFetchFailed):
		return codes.Unavailable
	case errors.Is(err, service.ErrSuperseded):
		return codes.Aborted
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}

	if st, ok := status.FromError(err); ok {
		return st.Code()
	}

	return codes.Internal
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// err == nil - это программная ошибка вызова: возвращаем 500/internal,
// чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
func ToHTTP(err error) (int, ErrorResponse) {
	code := CodeOf(err)
	if code == codes.OK {
		code = codes.Internal
	}

	httpStatus, apiCode, msg := baseFromGRPC(code)
	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    apiCode,
			Message: msg,
		},
	}
}

// WriteError - хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromGRPC - базовый маппинг gRPC -> HTTP/FE-код/сообщение.
//   - InvalidArgument (пустая строка поиска, неизвестное поле сортировки) -> 400
//   - NotFound -> 404
//   - FailedPrecondition (нет истории, идёт загрузка, страницы кончились) -> 412
//   - Aborted (ответ вытеснен более новым запросом) -> 409
//   - Canceled -> 499 (клиент закрыл соединение)
//   - DeadlineExceeded -> 504
//   - Unavailable (API поиска недоступен) -> 503
//   - Unimplemented -> 501
//   - прочее -> 500/internal
func baseFromGRPC(c codes.Code) (int, string, string) {
	switch c {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case codes.NotFound:
		return http.StatusNotFound, "not_found", "not found"
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed, "failed_precondition", "failed precondition"
	case codes.Aborted:
		return http.StatusConflict, "aborted", "aborted"
	case codes.Canceled:
		return StatusClientClosedRequest, "canceled", "canceled"
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case codes.Unavailable:
		return http.StatusServiceUnavailable, "unavailable", "search api unavailable"
	case codes.Unimplemented:
		return http.StatusNotImplemented, "unimplemented", "unimplemented"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда почтовый API отклонил отправку
	ErrSendFailed = errors.New("mailer: failed to send email")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer: internal error")
)

package ports

import "context"

// Mailer envía correos transaccionales. El transporte (SMTP, API) es externo.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, token string) error
}

package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ginebra-api/pkg/config"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

const (
	pingTimeout     = 2 * time.Minute
	pingMaxInterval = 15 * time.Second
)

// poolSettings tamaño y tiempos de vida de las conexiones.
var poolSettings = struct {
	maxConns, minConns   int32
	maxLifetime, maxIdle time.Duration
	healthCheck          time.Duration
}{
	maxConns: 20, minConns: 2,
	maxLifetime: time.Hour, maxIdle: 30 * time.Minute,
	healthCheck: time.Minute,
}

// NewPool abre el pool de PostgreSQL, registra el codec NUMERIC → decimal y espera a que la
// base responda reintentando el ping con backoff exponencial.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	if log == nil {
		log = logger.Nop()
	}
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Los contenedores sin IPv6 fallan al conectar a hosts que resuelven AAAA primero.
	poolConfig.ConnConfig.DialFunc = dialPreferIPv4
	poolConfig.MaxConns = poolSettings.maxConns
	poolConfig.MinConns = poolSettings.minConns
	poolConfig.MaxConnLifetime = poolSettings.maxLifetime
	poolConfig.MaxConnIdleTime = poolSettings.maxIdle
	poolConfig.HealthCheckPeriod = poolSettings.healthCheck
	poolConfig.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := waitForDB(ctx, pool, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	log.Info().Int32("max_conns", poolSettings.maxConns).Msg("PostgreSQL conectado")
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = pingTimeout
	policy.MaxInterval = pingMaxInterval
	return backoff.RetryNotify(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("next_attempt_in", next).Msg("PostgreSQL no responde, reintentando")
		},
	)
}

// dialPreferIPv4 conecta por la primera IPv4 del host; sin IPv4 disponible usa el dial normal.
func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	if ip := firstIPv4(ctx, host); ip != "" {
		return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
	}
	return d.DialContext(ctx, network, addr)
}

func firstIPv4(ctx context.Context, host string) string {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host
		}
		return ""
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		return ""
	}
	return ips[0].String()
}

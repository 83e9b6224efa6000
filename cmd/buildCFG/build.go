package buildCFG

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/dbpg"

	"rolecall/internal/mailer"
)

type ServerConfig struct {
	Port string
}

type RabbitConfig struct {
	Url      string
	Exchange string
	Queue    string
}

func BuildServerConfig(cfg *config.Config, log *zerolog.Logger) ServerConfig {
	port := cfg.GetString("server.port")
	if port == "" {
		port = "8080"
		log.Warn().Msg("server.port not set, defaulting to 8080")
	}
	return ServerConfig{Port: port}
}

func BuildDBConfig(cfg *config.Config, log *zerolog.Logger) (string, []string, *dbpg.Options, error) {
	host := cfg.GetString("db.host")
	port := cfg.GetString("db.port")
	user := cfg.GetString("db.user")
	pass := cfg.GetString("db.password")
	name := cfg.GetString("db.name")
	if host == "" || user == "" || name == "" {
		return "", nil, nil, fmt.Errorf("db.host, db.user and db.name are required")
	}
	if port == "" {
		port = "5432"
	}

	masterDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, port, name)
	slaveDSNs := cfg.GetStringSlice("db.slaves")

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.GetInt("db.max_open_conns"),
		MaxIdleConns:    cfg.GetInt("db.max_idle_conns"),
		ConnMaxLifetime: time.Duration(cfg.GetInt("db.conn_max_lifetime_seconds")) * time.Second,
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 10
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 5
	}

	log.Info().Msgf("DB config built for %s:%s/%s", host, port, name)
	return masterDSN, slaveDSNs, opts, nil
}

func BuildRabbitConfig(cfg *config.Config, log *zerolog.Logger) (RabbitConfig, error) {
	url := cfg.GetString("rabbit.url")
	if url == "" {
		return RabbitConfig{}, fmt.Errorf("rabbit.url is required")
	}
	exchange := cfg.GetString("rabbit.exchange")
	if exchange == "" {
		exchange = "rolecall.events"
	}
	queue := cfg.GetString("rabbit.queue")
	if queue == "" {
		queue = "rolecall.notifications"
	}
	log.Info().Msgf("Rabbit config built (exchange=%s, queue=%s)", exchange, queue)
	return RabbitConfig{Url: url, Exchange: exchange, Queue: queue}, nil
}

func BuildSMTPConfig(cfg *config.Config, log *zerolog.Logger) mailer.Config {
	host := cfg.GetString("smtp.host")
	addr := cfg.GetString("smtp.addr")
	if host != "" && addr == "" {
		addr = host + ":587"
	}
	from := cfg.GetString("smtp.from")
	if from == "" {
		log.Warn().Msg("smtp.from not set, outgoing mail will fail")
	}
	return mailer.Config{
		Host: host,
		Addr: addr,
		From: from,
		Pass: cfg.GetString("smtp.password"),
	}
}

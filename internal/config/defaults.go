package config

import "time"

const (
	defaultPort      = 8080
	defaultPprofAddr = "127.0.0.1:6060"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "courier",
	Pass: "courier",
	Name: "courier_db",
}

const defaultOperationTimeout = 3 * time.Second

var defaultRateLimit = RateLimit{
	Rate:  50,
	Burst: 100,
}

var defaultKafka = Kafka{
	Topic:   "courier.status-events",
	GroupID: "courier-dispatch-worker",
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }

// DefaultPprofAddr returns the default pprof listen address.
func DefaultPprofAddr() string { return defaultPprofAddr }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultOperationTimeout returns the default per-operation timeout.
func DefaultOperationTimeout() time.Duration { return defaultOperationTimeout }

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultKafka returns the default Kafka settings (brokers unset).
func DefaultKafka() Kafka { return defaultKafka }

package mq

import (
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lukpoex/next-commerce/internal/config"
)

var (
	conn *amqp.Connection
	once sync.Once
)

// Init opens the RabbitMQ connection. An empty URL disables MQ entirely and
// returns nil; event publishing then becomes a no-op.
func Init(cfg *config.RabbitMQConfig) *amqp.Connection {
	once.Do(func() {
		if cfg.URL == "" {
			return
		}
		c, err := amqp.Dial(cfg.URL)
		if err != nil {
			log.Printf("rabbitmq unavailable, catalog events disabled: %v", err)
			return
		}
		conn = c
	})
	return conn
}

// Conn returns the MQ connection, nil when disabled.
func Conn() *amqp.Connection {
	return conn
}

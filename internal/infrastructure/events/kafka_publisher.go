// Package events contiene el adaptador Kafka del puerto EventPublisher.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/tu-usuario/invoicing-api/internal/application/ports"
	"github.com/tu-usuario/invoicing-api/pkg/logger"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher publica eventos de dominio en un único topic; la clave del
// mensaje es la routing key (invoice.created, invoice.item.added, ...), así los
// consumidores filtran por clave y los eventos de una misma factura comparten
// partición solo si el broker particiona por clave.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

// NewKafkaPublisher construye el publicador.
func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		log: log,
	}
}

// Publish serializa el payload a JSON y lo escribe en el topic.
func (p *KafkaPublisher) Publish(ctx context.Context, routingKey string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", routingKey, err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(routingKey),
		Value: body,
	})
	if err != nil {
		return fmt.Errorf("publicar evento %s: %w", routingKey, err)
	}
	p.log.Debug().Str("routing_key", routingKey).Msg("evento de dominio publicado")
	return nil
}

// Close cierra el writer subyacente.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

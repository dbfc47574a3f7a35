package messaging

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	Channel *amqp091.Channel
}

// NewRabbitMQPublisher opens a channel and declares each queue as durable.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queues ...string) (contracts.MessagePublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range queues {
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			channel.Close()
			return nil, err
		}
	}

	return &rabbitMQPublisher{
		Channel: channel,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", queueName, false, false, publishing)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	return nil
}

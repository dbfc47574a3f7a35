package contracts

import "context"

type MessagePublisher interface {
	Publish(ctx context.Context, queueName string, message interface{}) error
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"newsroom/models"
)

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
}

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(cfg Config) (*RabbitMQ, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = "newsroom"
	}
	if cfg.RoutingKey == "" {
		cfg.RoutingKey = "content"
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Printf("connected to rabbitmq exchange=%s routing_key=%s", cfg.Exchange, cfg.RoutingKey)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
	}, nil
}

func (r *RabbitMQ) ArticlePublished(ctx context.Context, article *models.Article) error {
	msg := ArticleMessage{
		ArticleID:   article.ID,
		Title:       article.Title,
		AuthorID:    article.AuthorID,
		PublisherID: article.PublisherID,
		ApprovedAt:  article.ApprovedAt,
		Timestamp:   time.Now().UTC(),
	}
	return r.publish(ctx, "article.published", msg)
}

func (r *RabbitMQ) NewsletterCreated(ctx context.Context, newsletter *models.Newsletter) error {
	msg := NewsletterMessage{
		NewsletterID: newsletter.ID,
		Title:        newsletter.Title,
		AuthorID:     newsletter.AuthorID,
		PublisherID:  newsletter.PublisherID,
		Timestamp:    time.Now().UTC(),
	}
	return r.publish(ctx, "newsletter.created", msg)
}

func (r *RabbitMQ) publish(ctx context.Context, kind string, msg interface{}) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         kind,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", kind, err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if err := r.channel.Close(); err != nil {
		return err
	}
	return r.conn.Close()
}

package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const componentAttr = "component"

// logger is tagged so the log shipper never feeds its own transport.
func logger() *slog.Logger {
	return slog.Default().With(componentAttr, "kafka")
}

// EnsureTopic declares the topic on the cluster controller, tolerating an
// existing one. The first reachable broker is used.
func EnsureTopic(ctx context.Context, cfg config.QueueConfig) error {
	if len(cfg.Brokers) == 0 {
		return ErrNoBrokers
	}

	dialer := &kafka.Dialer{Timeout: cfg.DialTimeout}

	var lastErr error
	for _, broker := range cfg.Brokers {
		err := createTopic(ctx, dialer, broker, cfg.Topic)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return errs.Wrapf(lastErr, "failed to declare topic %s", cfg.Topic)
}

func createTopic(ctx context.Context, dialer *kafka.Dialer, broker, topic string) error {
	conn, err := dialer.DialContext(ctx, "tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}

	ctrl, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer ctrl.Close()

	err = ctrl.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return err
	}
	return nil
}

func kafkaErrorLogger() kafka.Logger {
	return kafka.LoggerFunc(func(msg string, args ...any) {
		logger().Warn("kafka client error", "detail", fmt.Sprintf(msg, args...))
	})
}

func silentLogger() kafka.Logger {
	return kafka.LoggerFunc(func(string, ...any) {})
}

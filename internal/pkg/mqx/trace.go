package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/pkg/mqx"

// TracedMQ 给所有生产者加上 span，消费端不动
type TracedMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTracedMQ(q mq.MQ) *TracedMQ {
	return &TracedMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TracedMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &tracedProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type tracedProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *tracedProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "mq.produce", m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	t.finish(span, err)
	return res, err
}

func (t *tracedProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "mq.produce_with_partition", m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	t.finish(span, err)
	return res, err
}

func (t *tracedProducer) start(ctx context.Context, name string, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindProducer))
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "mq"),
		attribute.String("messaging.destination", t.topic),
	}
	if m != nil {
		attrs = append(attrs,
			attribute.String("messaging.message_key", string(m.Key)),
			attribute.Int("messaging.message_length", len(m.Value)))
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

func (t *tracedProducer) finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

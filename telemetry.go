package passcrypt

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = otel.Meter("github.com/rbaliyan/passcrypt")

	encryptOps     metric.Int64Counter
	decryptOps     metric.Int64Counter
	plaintextBytes metric.Int64Histogram
)

func init() {
	encryptOps, _ = meter.Int64Counter("passcrypt.encrypt.operations",
		metric.WithDescription("Number of Encrypt calls, by outcome."))
	decryptOps, _ = meter.Int64Counter("passcrypt.decrypt.operations",
		metric.WithDescription("Number of Decrypt calls, by outcome."))
	plaintextBytes, _ = meter.Int64Histogram("passcrypt.plaintext.size",
		metric.WithDescription("Plaintext size per successful Encrypt call."),
		metric.WithUnit("By"))
}

// The public operations are context-free pure functions, so measurements
// attach to the background context.

func recordEncrypt(n int, err error) {
	ctx := context.Background()
	encryptOps.Add(ctx, 1, metric.WithAttributes(outcome(err)))
	if err == nil {
		plaintextBytes.Record(ctx, int64(n))
	}
}

func recordDecrypt(err error) {
	decryptOps.Add(context.Background(), 1, metric.WithAttributes(outcome(err)))
}

func outcome(err error) attribute.KeyValue {
	if err != nil {
		return attribute.String("outcome", "error")
	}
	return attribute.String("outcome", "ok")
}

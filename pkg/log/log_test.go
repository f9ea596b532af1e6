package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestDevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	l := &logger{entry: logrus.NewEntry(base)}
	l.WithFields(Fields{"client_id": 3, "query": "start=2025-01-01"}).Info("teste")

	assert.Contains(t, buf.String(), "client_id=3")
	assert.NotContains(t, buf.String(), "query=")
}

func TestProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	l := &logger{entry: logrus.NewEntry(base)}
	l.WithField("query", "x").Info("teste")

	assert.Contains(t, buf.String(), "query=x")
}

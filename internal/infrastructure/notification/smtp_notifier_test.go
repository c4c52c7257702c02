package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clearview_estimator/internal/config"
	"clearview_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type fakeSender struct {
	failures int
	calls    int
	sent     []*gomail.Msg
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("connection refused")
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:       "q-1",
		Customer: entities.Customer{Name: "Jane Doe", Email: "jane@example.com"},
		MainService: &entities.SelectedService{
			ServiceKey: entities.ServiceBasicBoth, BasePrice: 1320, Price: 1056, PackageTier: entities.PackageTierDefined,
		},
		AddOns: []entities.SelectedService{
			{ServiceKey: entities.ServiceScreenRepair, BasePrice: 75, Price: 60, Quantity: 3},
		},
		Frequency:       entities.FrequencyThreeMonths,
		DiscountPercent: 20,
		TotalPrice:      1116,
		Status:          entities.QuoteStatusCompleted,
		BookingURL:      "https://book.example.com/500-plus",
	}
}

func testSMTPConfig() config.SMTP {
	return config.SMTP{
		FromAddress: "estimates@example.com",
		FromName:    "ClearView",
		MaxElapsed:  5 * time.Second,
	}
}

func TestRenderEstimate(t *testing.T) {
	html, err := renderEstimate(newEstimateEmailData("ClearView", sampleQuote()))
	require.NoError(t, err)

	assert.Contains(t, html, "Hi Jane Doe,")
	assert.Contains(t, html, "Window cleaning, inside and out (defined package)")
	assert.Contains(t, html, "$1,056")
	assert.Contains(t, html, "Screen repair &times; 3")
	assert.Contains(t, html, "Every 3 months")
	assert.Contains(t, html, "(20% off)")
	assert.Contains(t, html, "$1,116")
	assert.Contains(t, html, "https://book.example.com/500-plus")
}

func TestRenderEstimate_EscapesCustomerName(t *testing.T) {
	q := sampleQuote()
	q.Customer.Name = "<script>alert(1)</script>"

	html, err := renderEstimate(newEstimateEmailData("ClearView", q))
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert(1)</script>"))
}

func TestFrequencyLabel_DefaultsToOneTime(t *testing.T) {
	assert.Equal(t, "One time", frequencyLabel(""))
	assert.Equal(t, "Yearly", frequencyLabel(entities.FrequencyYearly))
}

func TestSMTPNotifier_MockMode(t *testing.T) {
	cfg := testSMTPConfig()
	cfg.Mock = true

	n, err := NewSMTPNotifier(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, n.client)
	assert.NoError(t, n.SendEstimateEmail(context.Background(), sampleQuote()))
}

func TestSMTPNotifier_RetriesUntilSent(t *testing.T) {
	fake := &fakeSender{failures: 2}
	n := &SMTPNotifier{cfg: testSMTPConfig(), client: fake, logger: zap.NewNop()}

	err := n.SendEstimateEmail(context.Background(), sampleQuote())
	require.NoError(t, err)
	assert.Equal(t, 3, fake.calls)
	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"Your ClearView estimate: $1,116"}, fake.sent[0].GetGenHeader(gomail.HeaderSubject))
}

func TestSMTPNotifier_GivesUpWhenContextDone(t *testing.T) {
	fake := &fakeSender{failures: 100}
	n := &SMTPNotifier{cfg: testSMTPConfig(), client: fake, logger: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.SendEstimateEmail(ctx, sampleQuote())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp send")
}

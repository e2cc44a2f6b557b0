package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений.
// Уведомления информационные: сервис уведомлений не участвует в расчете
// доступности и не может отклонить бронирование.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyBookingConfirmed отправляет уведомление о подтвержденном бронировании.
// Применяет graceful degradation: при недоступности сервиса возвращает
// ErrServiceDegraded, вызывающая сторона логирует и продолжает работу.
func (c *Client) NotifyBookingConfirmed(ctx context.Context, event *BookingEvent) error {
	return c.send(ctx, "/internal/notifications/booking-confirmed", event)
}

// NotifyBookingCanceled отправляет уведомление об отмене бронирования
func (c *Client) NotifyBookingCanceled(ctx context.Context, event *BookingEvent) error {
	return c.send(ctx, "/internal/notifications/booking-canceled", event)
}

func (c *Client) send(ctx context.Context, path string, event *BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Недоступность notifier не должна ронять бронирование
		c.log.Error("Notifier unavailable, applying graceful degradation for booking_id=%d: %v", event.BookingID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, event.BookingID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("Notifier rejected event for booking_id=%d: status=%d body=%s", event.BookingID, resp.StatusCode, string(body))
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	c.log.Info("Notification sent: booking_id=%d, status=%s", event.BookingID, event.Status)
	return nil
}

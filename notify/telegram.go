package notify

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"oilevels/config"
	"oilevels/logger"
)

// TelegramNotifier pushes processed reports to a Telegram chat. Delivery
// is best effort and never blocks the processing result.
type TelegramNotifier struct {
	config *config.TelegramConfig
	log    *logger.Logger
}

func NewTelegramNotifier(cfg *config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		config: cfg,
		log:    logger.L(),
	}
}

func (t *TelegramNotifier) SendMessage(message string) error {
	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.config.BotToken)

	resp, err := http.PostForm(apiURL, url.Values{
		"chat_id": {t.config.ChatID},
		"text":    {message},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage returned status %d", resp.StatusCode)
	}
	return nil
}

// SendDocument uploads an in-memory file to the chat.
func (t *TelegramNotifier) SendDocument(filename string, data []byte) error {
	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/sendDocument", t.config.BotToken)

	// Create multipart form
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		return err
	}
	if _, err = io.Copy(part, bytes.NewReader(data)); err != nil {
		return err
	}

	writer.WriteField("chat_id", t.config.ChatID)
	writer.Close()

	resp, err := http.Post(apiURL, writer.FormDataContentType(), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendDocument returned status %d", resp.StatusCode)
	}

	t.log.Info("Sent processed report to Telegram", map[string]interface{}{
		"file":  filename,
		"bytes": len(data),
	})
	return nil
}

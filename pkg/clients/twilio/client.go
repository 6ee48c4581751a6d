package twilio

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client defines the interface for sending SMS via Twilio
type Client interface {
	SendSMS(to, body string) error
}

type clientImpl struct {
	client *twilio.RestClient
	from   string
}

// NewClient creates a new Twilio client
func NewClient(accountSid, authToken, from string) Client {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &clientImpl{
		client: client,
		from:   from,
	}
}

func (c *clientImpl) SendSMS(to, body string) error {
	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("error sending SMS: %w", err)
	}

	if resp.Sid != nil {
		log.Printf("Sent SMS to %s, sid: %s", to, *resp.Sid)
	}
	return nil
}

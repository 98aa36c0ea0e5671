package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"venuehub/internal/ports/output"
)

const (
	embedColorCreated   = 0x57F287
	embedColorCancelled = 0xED4245
)

var _ output.BookingNotifier = (*DiscordNotifier)(nil)

// DiscordNotifier posts booking events to a Discord channel webhook.
type DiscordNotifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// NewDiscordNotifier needs no bot token: webhook calls authenticate with the
// webhook token only.
func NewDiscordNotifier(webhookID, token string) (*DiscordNotifier, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return &DiscordNotifier{session: s, webhookID: webhookID, token: token}, nil
}

func (n *DiscordNotifier) Notify(ctx context.Context, event output.BookingEvent) error {
	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{BuildBookingEmbed(event)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	return nil
}

// BuildBookingEmbed renders a booking event for the venue operations channel.
func BuildBookingEmbed(event output.BookingEvent) *discordgo.MessageEmbed {
	b := event.Booking
	venueName := fmt.Sprintf("#%d", b.VenueID)
	if event.Venue != nil {
		venueName = event.Venue.Name
	}

	title, color := "📅 New booking", embedColorCreated
	if event.Kind == output.BookingCancelled {
		title, color = "🗑️ Booking cancelled", embedColorCancelled
	}

	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("**Venue:** %s\n", venueName))
	desc.WriteString(fmt.Sprintf("**When:** %s\n", b.Slot()))
	desc.WriteString(fmt.Sprintf("**By:** %s", b.Username))

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: desc.String(),
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("booking %d • %s", b.ID, b.Status)},
	}
}

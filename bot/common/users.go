package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// GetDisplayName gets the display name for a user in a guild, falling back to
// their username when no nickname is set
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown User"
}

// GetDisplayNameInt64 is GetDisplayName for numeric Discord IDs
func GetDisplayNameInt64(s *discordgo.Session, guildID string, userID int64) string {
	return GetDisplayName(s, guildID, strconv.FormatInt(userID, 10))
}

// ParseDiscordID converts Discord's string IDs to the int64 keys the services use
func ParseDiscordID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

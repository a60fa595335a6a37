package content

import (
	"fmt"
	"strings"

	"github.com/thedittmer/research-agent/internal/models"
)

// FormatPost renders one idea as a post for the given platform.
func FormatPost(platform models.Platform, idea models.ContentIdea) models.PlatformPost {
	var body string
	keyPoints := strings.Join(idea.KeyPoints, "\n")

	switch platform {
	case models.PlatformLinkedIn:
		hook := fmt.Sprintf("🚀 *%s* - Grab attention with this hook!", idea.Title)
		interest := "🔍 Let's dive deeper into this topic!"
		main := fmt.Sprintf("%s\n\n*Key Points to Cover:*\n%s\n\nThis is where you expand on the idea and provide valuable insights.",
			idea.Description, keyPoints)
		cta := "👉 What are your thoughts? Share in the comments!"
		hashtags := "#ContentIdeas #LinkedIn #Engagement"
		body = strings.Join([]string{hook, interest, main, cta, hashtags}, "\n\n")

	case models.PlatformFacebook:
		body = fmt.Sprintf("🌟 *%s*\n\n%s\n\n*Key Points:*\n%s\n\n💬 We want to hear from you! What do you think about this topic? Share your thoughts in the comments below!\n\n#Facebook #Community #Engagement",
			idea.Title, idea.Description, keyPoints)

	case models.PlatformInstagram:
		body = fmt.Sprintf("✨ *%s*\n\n%s\n\n*Key Highlights:*\n%s\n\n📸 Don't forget to tag us in your posts! #Instagram #ContentIdeas #Inspiration",
			idea.Title, idea.Description, keyPoints)
	}

	return models.PlatformPost{Platform: platform, Body: body}
}

// BuildPosts renders every idea for every platform. All platforms work
// from the same parsed ideas, so their post counts always match.
func BuildPosts(ideas []models.ContentIdea) map[models.Platform][]models.PlatformPost {
	posts := make(map[models.Platform][]models.PlatformPost)
	for _, platform := range models.Platforms() {
		list := make([]models.PlatformPost, 0, len(ideas))
		for _, idea := range ideas {
			list = append(list, FormatPost(platform, idea))
		}
		posts[platform] = list
	}
	return posts
}

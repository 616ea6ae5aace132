package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Saanwar2002/Ideahero/internal/models"
)

// SeedIdeas inserts the curated starter ideas. Each idea is keyed by title
// so re-running the seed is a no-op for ideas that already exist.
func SeedIdeas(db *gorm.DB) error {
	ideas := sampleIdeas()

	added := 0
	for _, idea := range ideas {
		var count int64
		if err := db.Model(&models.Idea{}).Where("title = ?", idea.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&idea).Error; err != nil {
			return err
		}
		added++
	}

	if added > 0 {
		log.Printf("✅ Seeded %d curated ideas", added)
	}
	return nil
}

func sampleIdeas() []models.Idea {
	now := time.Now().UTC()
	return []models.Idea{
		{
			ID:          uuid.NewString(),
			Title:       "AI-Powered Code Review Assistant for Development Teams",
			Description: "An intelligent code review tool that uses machine learning to automatically identify bugs, security vulnerabilities, performance issues, and code quality problems before deployment. The system learns from your team's coding patterns and provides personalized suggestions to improve code quality and reduce review time.",
			Category:    "Technology",
			Source:      "HackerNews",
			SourceURL:   "https://news.ycombinator.com/item?id=example1",
			Tags: models.TagList{
				{Label: "High Demand", Type: "advantage", Icon: "🔥"},
				{Label: "Tech Ready", Type: "ready", Icon: "✅"},
				{Label: "Growing Market", Type: "timing", Icon: "📈"},
			},
			ImplementationGuide: models.JSONMap{
				"steps": []string{
					"Market research and competitor analysis",
					"Define MVP features and technical requirements",
					"Build AI model for code analysis",
					"Develop integration with popular IDEs",
					"Create user dashboard and reporting",
					"Beta testing with development teams",
					"Launch and iterate based on feedback",
				},
				"estimated_time":   "6-12 months",
				"estimated_budget": "$50,000 - $150,000",
				"required_skills":  []string{"Machine Learning", "Software Development", "DevOps"},
				"difficulty":       "Advanced",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Transparent HVAC Pricing Platform - End Quote Anxiety For Homeowners",
			Description: "Homeowners dread HVAC repairs because of unpredictable pricing and questionable quotes. TruPrice HVAC transforms this experience with transparent, real-time pricing that eliminates the uncertainty and mistrust. The platform shows exact costs for parts, labor, and service fees before you commit to anything.",
			Category:    "Business",
			Source:      "HackerNews",
			SourceURL:   "https://news.ycombinator.com/item?id=example2",
			Tags: models.TagList{
				{Label: "Perfect Timing", Type: "timing", Icon: "⏰"},
				{Label: "Unfair Advantage", Type: "advantage", Icon: "⚡"},
				{Label: "Product Ready", Type: "ready", Icon: "✅"},
			},
			ImplementationGuide: models.JSONMap{
				"steps": []string{
					"Research HVAC industry pricing standards",
					"Build database of parts and labor costs",
					"Create contractor network and onboarding",
					"Develop customer-facing pricing calculator",
					"Build booking and scheduling system",
					"Launch in target metropolitan area",
					"Scale to additional markets",
				},
				"estimated_time":   "8-18 months",
				"estimated_budget": "$100,000 - $300,000",
				"required_skills":  []string{"Business Development", "Web Development", "Sales"},
				"difficulty":       "Intermediate",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Remote Team Wellness & Productivity Tracker",
			Description: "A comprehensive platform that helps remote teams track wellness metrics, productivity patterns, and team engagement. Uses AI to provide personalized recommendations for better work-life balance and team collaboration. Includes features for mood tracking, break reminders, and team building activities.",
			Category:    "Healthcare",
			Source:      "GitHub",
			SourceURL:   "https://github.com/example/remote-wellness",
			Tags: models.TagList{
				{Label: "Remote Work Trend", Type: "timing", Icon: "🏠"},
				{Label: "Mental Health Focus", Type: "advantage", Icon: "🧠"},
				{Label: "MVP Ready", Type: "ready", Icon: "🚀"},
			},
			ImplementationGuide: models.JSONMap{
				"steps": []string{
					"Survey remote workers about wellness needs",
					"Design user experience and wellness metrics",
					"Build core tracking and analytics features",
					"Integrate with popular productivity tools",
					"Develop AI recommendation engine",
					"Beta test with remote teams",
					"Launch freemium model",
				},
				"estimated_time":   "4-8 months",
				"estimated_budget": "$30,000 - $80,000",
				"required_skills":  []string{"UX Design", "Data Analytics", "Psychology"},
				"difficulty":       "Beginner",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Sustainable Supply Chain Transparency Platform",
			Description: "A blockchain-based platform that provides complete transparency in supply chains, allowing consumers to trace products from source to shelf. Features sustainability scoring, carbon footprint tracking, and ethical sourcing verification. Helps brands build trust and consumers make informed choices.",
			Category:    "Sustainability",
			Source:      "GitHub",
			SourceURL:   "https://github.com/example/supply-transparency",
			Tags: models.TagList{
				{Label: "Sustainability Trend", Type: "timing", Icon: "🌱"},
				{Label: "Blockchain Ready", Type: "ready", Icon: "⛓️"},
				{Label: "B2B Opportunity", Type: "advantage", Icon: "💼"},
			},
			ImplementationGuide: models.JSONMap{
				"steps": []string{
					"Research supply chain pain points",
					"Choose blockchain platform and architecture",
					"Build product tracking and verification system",
					"Create brand dashboard and consumer app",
					"Pilot with sustainable brands",
					"Scale platform and onboard retailers",
					"Expand to international markets",
				},
				"estimated_time":   "12-24 months",
				"estimated_budget": "$200,000 - $500,000",
				"required_skills":  []string{"Blockchain", "Supply Chain", "Business Development"},
				"difficulty":       "Advanced",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Local Skills Exchange & Learning Marketplace",
			Description: "A community-driven platform where people can exchange skills, teach each other, and learn new abilities through local meetups and online sessions. Features skill matching, progress tracking, and community building tools. Focuses on practical skills like cooking, DIY, technology, and creative arts.",
			Category:    "Education",
			Source:      "Community",
			SourceURL:   "https://example.com/community-discussion",
			Tags: models.TagList{
				{Label: "Community Building", Type: "advantage", Icon: "👥"},
				{Label: "Local Focus", Type: "timing", Icon: "📍"},
				{Label: "Low Startup Cost", Type: "ready", Icon: "💰"},
			},
			ImplementationGuide: models.JSONMap{
				"steps": []string{
					"Identify target community and core skills",
					"Build MVP with basic matching features",
					"Create event planning and scheduling tools",
					"Develop skill tracking and reputation system",
					"Launch in local community",
					"Build referral and growth features",
					"Expand to neighboring communities",
				},
				"estimated_time":   "3-6 months",
				"estimated_budget": "$10,000 - $30,000",
				"required_skills":  []string{"Community Management", "Web Development", "Marketing"},
				"difficulty":       "Beginner",
			},
			CreatedAt: now,
		},
	}
}

package docs

import "github.com/studi-app/studi-api/pkg/types"

// seedCatalog builds the built-in documentation set. Content exists only
// for a subset of items; the rest resolve to not-found by design.
func seedCatalog() *Catalog {
	return &Catalog{
		categories: []types.DocCategory{
			{
				ID:          "architecture",
				Name:        "Architecture",
				Description: "System architecture and design documentation",
				Icon:        "cube",
			},
			{
				ID:          "user-guides",
				Name:        "User Guides",
				Description: "Guides for using the Studi platform",
				Icon:        "book-open",
			},
			{
				ID:          "development",
				Name:        "Development",
				Description: "Documentation for developers",
				Icon:        "code",
			},
			{
				ID:          "api",
				Name:        "API Documentation",
				Description: "API reference and usage examples",
				Icon:        "server",
			},
			{
				ID:          "deployment",
				Name:        "Deployment & Operations",
				Description: "Deployment guides and operational procedures",
				Icon:        "cloud",
			},
			{
				ID:          "security",
				Name:        "Security & Compliance",
				Description: "Security documentation and compliance information",
				Icon:        "shield-check",
			},
		},
		items: []types.DocItem{
			{
				ID:         "architecture-overview",
				CategoryID: "architecture",
				Title:      "Architecture Overview",
				Path:       "/docs/ARCHITECTURE.md",
				Summary:    "Overview of the Studi system architecture",
			},
			{
				ID:         "agent-architecture",
				CategoryID: "architecture",
				Title:      "Agent Architecture",
				Path:       "/docs/AGENT_ARCHITECTURE.md",
				Summary:    "Details of the multi-agent AI system",
			},
			{
				ID:         "memory-system",
				CategoryID: "architecture",
				Title:      "Memory System",
				Path:       "/docs/MEMORY_SYSTEM.md",
				Summary:    "Documentation of the multi-layered memory system",
			},
			{
				ID:         "web-architecture",
				CategoryID: "architecture",
				Title:      "Web Architecture",
				Path:       "/docs/WEB_ARCHITECTURE.md",
				Summary:    "Web application architecture and components",
			},
			{
				ID:         "getting-started",
				CategoryID: "user-guides",
				Title:      "Getting Started",
				Path:       "/docs/user-guides/GETTING_STARTED.md",
				Summary:    "Guide for new users to get started with Studi",
			},
			{
				ID:         "canvas-integration",
				CategoryID: "user-guides",
				Title:      "Canvas LMS Integration",
				Path:       "/docs/user-guides/CANVAS_INTEGRATION.md",
				Summary:    "How to connect Studi with Canvas LMS",
			},
			{
				ID:         "study-guide-creation",
				CategoryID: "user-guides",
				Title:      "Creating Study Guides",
				Path:       "/docs/user-guides/STUDY_GUIDES.md",
				Summary:    "How to create and use personalized study guides",
			},
			{
				ID:         "api-overview",
				CategoryID: "api",
				Title:      "API Overview",
				Path:       "/docs/api/OVERVIEW.md",
				Summary:    "Overview of the Studi API",
			},
			{
				ID:         "authentication",
				CategoryID: "api",
				Title:      "Authentication",
				Path:       "/docs/api/AUTHENTICATION.md",
				Summary:    "API authentication methods and examples",
			},
			{
				ID:         "deployment-guide",
				CategoryID: "deployment",
				Title:      "Deployment Guide",
				Path:       "/docs/DEPLOYMENT.md",
				Summary:    "Guide for deploying Studi in production",
			},
		},
		content: map[string]types.DocContent{
			"architecture-overview": {
				ID:    "architecture-overview",
				Title: "Architecture Overview",
				Content: `
# Architecture Overview

Studi is built on a modern, scalable architecture designed to provide a seamless learning experience.

## Core Components

- **Multi-Agent AI System**: Specialized AI agents for planning, knowledge creation, and task execution
- **Memory System**: Multi-layered memory for context retention and knowledge creation
- **Web Application**: React frontend with FastAPI backend
- **Canvas LMS Integration**: Seamless connection to Canvas courses and assignments

## System Diagram

` + "```" + `
User <-> Web App <-> API Gateway <-> Agent System <-> Memory System
                                  <-> Canvas API
` + "```" + `

## Data Flow

1. User interacts with the web application
2. Requests are processed by the API Gateway
3. The Agent System handles complex tasks using specialized agents
4. The Memory System stores and retrieves relevant information
5. Canvas API integration provides access to course materials and assignments
`,
				TOC: []types.TOCEntry{
					{Level: 1, Title: "Architecture Overview", Anchor: "architecture-overview"},
					{Level: 2, Title: "Core Components", Anchor: "core-components"},
					{Level: 2, Title: "System Diagram", Anchor: "system-diagram"},
					{Level: 2, Title: "Data Flow", Anchor: "data-flow"},
				},
				LastUpdated: "2023-06-15",
			},
		},
	}
}

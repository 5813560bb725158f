package workspace

import (
	"github.com/google/uuid"

	"trove/internal/domain"
)

// Seed populates the store with a small demo workspace so the app has
// something to browse on first run.
func Seed(s *Store) {
	research := domain.Project{ID: uuid.NewString(), Name: "Research"}
	personal := domain.Project{ID: uuid.NewString(), Name: "Personal"}
	s.AddProject(research)
	s.AddProject(personal)

	papers := domain.Folder{ID: uuid.NewString(), Name: "Papers", ProjectID: research.ID}
	drafts := domain.Folder{ID: uuid.NewString(), Name: "Drafts", ParentFolderID: papers.ID, ProjectID: research.ID}
	archive := domain.Folder{ID: uuid.NewString(), Name: "Archive", ProjectID: research.ID}
	s.AddFolder(papers)
	s.AddFolder(drafts)
	s.AddFolder(archive)

	s.AddFile(domain.File{
		ID: uuid.NewString(), Name: "notes.md", ProjectID: research.ID,
		Content: "# Notes\n\nScratchpad for the survey.\n",
	})
	s.AddFile(domain.File{
		ID: uuid.NewString(), Name: "survey-outline.md", ParentFolderID: papers.ID, ProjectID: research.ID,
		Content: "# Survey outline\n\n1. Background\n2. Methods\n3. Results\n",
	})
	s.AddFile(domain.File{
		ID: uuid.NewString(), Name: "abstract-v2.md", ParentFolderID: drafts.ID, ProjectID: research.ID,
		Content: "Second pass at the abstract.\n",
	})

	s.AddConversation(domain.Conversation{
		ID: uuid.NewString(), Title: "Literature review chat", ProjectID: research.ID,
		Transcript: "user: Summarize the three most cited papers on the topic.\n\nassistant: Here is a summary of each...\n",
	})
	s.AddConversation(domain.Conversation{
		ID: uuid.NewString(), Title: "Methods brainstorm", ParentFolderID: papers.ID, ProjectID: research.ID,
		Transcript: "user: What evaluation setups would fit here?\n\nassistant: A few options come to mind...\n",
	})

	recipes := domain.Folder{ID: uuid.NewString(), Name: "Recipes", ProjectID: personal.ID}
	s.AddFolder(recipes)
	s.AddFile(domain.File{
		ID: uuid.NewString(), Name: "bread.md", ParentFolderID: recipes.ID, ProjectID: personal.ID,
		Content: "Flour, water, salt, yeast.\n",
	})
	s.AddConversation(domain.Conversation{
		ID: uuid.NewString(), Title: "Trip planning", ProjectID: personal.ID,
		Transcript: "user: Plan a three day hiking trip.\n\nassistant: Day one...\n",
	})
}

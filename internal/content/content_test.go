package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeaturedAndOthersPartitionProjects(t *testing.T) {
	featured := Featured(Projects)
	others := Others(Projects)

	require.Len(t, featured, 5)
	require.Len(t, others, 3)
	require.Equal(t, len(Projects), len(featured)+len(others))
	require.Equal(t, "BibliophileAI", featured[0].Title)
	require.Equal(t, "Neural Style Transfer with Transformers", others[0].Title)
}

func TestAllSkillsKeepsCategoryOrder(t *testing.T) {
	all := AllSkills(SkillCategories)

	require.Len(t, all, 28)
	require.Equal(t, "Python", all[0].Name)
	require.Equal(t, "Evidently AI", all[len(all)-1].Name)
}

package types

type (
	FormatVersion int
	BranchName    string
)

const (
	// SupportedFormatVersion is the only repositoryformatversion this
	// tool accepts when opening a repository with validation.
	SupportedFormatVersion FormatVersion = 0

	// DefaultBranch is the branch a fresh HEAD points to.
	DefaultBranch BranchName = "master"
)

// Metadata directory layout. Entries are relative to the metadata
// directory except MetadataDirName, which is relative to the worktree.
const (
	MetadataDirName = ".git"

	ConfigFile      = "config"
	DescriptionFile = "description"
	HeadFile        = "HEAD"

	BranchesDir = "branches"
	ObjectsDir  = "objects"
	RefsDir     = "refs"
	TagsDir     = "tags"
	HeadsDir    = "heads"
)

// DefaultDescription is the content of a fresh repository's description file.
const DefaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"

package usecasecontract

// IAppLogger is the logging facade used across usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the runtime settings the usecases consult.
type IConfigProvider interface {
	// GetTreeRequirePost decides the contract for tree reads of a
	// nonexistent post: true surfaces NotFound, false yields an empty tree.
	GetTreeRequirePost() bool
	GetMaxCommentLength() int
	GetDefaultPageSize() int
	GetMaxPageSize() int
}

// IValidator validates inbound payload fields beyond binding tags.
type IValidator interface {
	ValidateCommentText(text string) error
	ValidatePrivacy(privacy string) error
	ValidateSort(sortBy string) error
}

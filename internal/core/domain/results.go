package domain

// InsertResult mirrors the acknowledgement of a single insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult mirrors the acknowledgement of a single update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    any   `json:"upsertedId"`
	UpsertedCount int64 `json:"upsertedCount"`
	MatchedCount  int64 `json:"matchedCount"`
}

// DeleteResult mirrors the acknowledgement of a single delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// DuplicateUserMessage is the sentinel returned when registering an email
// that already has an account.
const DuplicateUserMessage = "User already exists"

// DuplicateUserResult is returned with 200 instead of an insert result when
// the account already exists. InsertedID is always null.
type DuplicateUserResult struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}

// RoleToggleResult is the response of a role toggle.
type RoleToggleResult struct {
	Result  *UpdateResult `json:"result"`
	NewRole string        `json:"newRole"`
}

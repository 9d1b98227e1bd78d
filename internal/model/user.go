package model

// User represents an application user record as stored in the `user`
// table.  The password column holds an opaque credential: callers at
// the HTTP boundary hash it before it reaches the store, and nothing
// in the core ever interprets it.
//
// Fields:
//  ID       – primary key identifier of the user.
//  Name     – display name.
//  Rol      – role tag (column name kept from the original schema).
//  Email    – contact address.
//  Password – opaque credential bytes, never serialized in responses.
type User struct {
	ID       uint64 `json:"id"`    // user.id
	Name     string `json:"name"`  // user.name
	Rol      string `json:"rol"`   // user.rol
	Email    string `json:"email"` // user.email
	Password string `json:"-"`     // user.password
}

// CreateUserRequest is the payload accepted by POST /user.  All four
// fields are required.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Rol      string `json:"rol"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

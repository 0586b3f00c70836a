package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Username     string
	Password     string
	AuthLevel    string
	Nickname     string
	Name         string
	MobileNumber string
	Email        string
	DelStatus    string
	DelDate      string
	RegDate      string
	UpdateDate   string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Password:     "password",
	AuthLevel:    "authlevel",
	Nickname:     "nickname",
	Name:         "name",
	MobileNumber: "mobilenumber",
	Email:        "email",
	DelStatus:    "delstatus",
	DelDate:      "deldate",
	RegDate:      "regdate",
	UpdateDate:   "updatedate",
}

func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Password, t.AuthLevel, t.Nickname, t.Name, t.MobileNumber, t.Email, t.DelStatus, t.DelDate, t.RegDate, t.UpdateDate}
}

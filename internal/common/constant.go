package common

// AdminUsername is the reserved account that owns the settings panel and can
// never be deleted.
const AdminUsername = "cleazy"

// AdminDefaultPassword is written by the admin bootstrap. Passwords are
// stored and compared in plaintext.
const AdminDefaultPassword = "1234"

package models

// AttendanceStatus is stored as free text; scans always write Present.
type AttendanceStatus string

const Present AttendanceStatus = "Presente"

// RoleTeacher is the default role for users created from the admin CLI.
const RoleTeacher = "docente"

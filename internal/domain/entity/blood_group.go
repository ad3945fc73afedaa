package entity

// BloodGroups lists the eight canonical blood groups the system tracks.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

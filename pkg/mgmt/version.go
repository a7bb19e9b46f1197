package mgmt

// Version is the version of the SDK.
const Version = "0.3.0"

// UserAgent is sent with every request.
const UserAgent = "mgmt-go/" + Version

package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token       string `json:"token"`
	UID         uint   `json:"user_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

type UploadResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
}

package dto

// AskRequest pregunta de negocio en lenguaje natural para el asistente.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse respuesta en prosa del asistente (o el mensaje fijo de fallo).
type AskResponse struct {
	Answer string `json:"answer"`
}

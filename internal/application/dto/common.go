package dto

// Response es el sobre uniforme de la API: { success, message, data? }.
// Toda respuesta JSON, exitosa o no, usa esta forma.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error con solo el mensaje.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

package tasks

// Task — модель задачи.
//
// Живёт только в памяти процесса и сериализуется в JSON для API.
// Completed при создании всегда false, ни одна операция его не меняет.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskCreate описывает контракт входящего JSON для создания и полного обновления задачи.
//
// ID и Completed сюда не входят: ID выдаёт сервис, Completed не принимаем от клиента.
type TaskCreate struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=5"`
}

// MessageResponse — ответ вида {"message": "..."} (приветствие, подтверждение удаления).
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	welcomeMessage = "Welcome to Task Manager API"
	deletedMessage = "Task deleted"
)

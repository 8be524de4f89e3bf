package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode Декодирует JSON тело запроса в T.
// Пустое тело и лишние данные после объекта считаются ошибкой
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(body)
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, errors.New("empty request body")
		}
		return payload, fmt.Errorf("invalid request body: %w", err)
	}
	if dec.More() {
		return payload, errors.New("invalid request body: unexpected data after object")
	}

	return payload, nil
}

package todolist

import "github.com/MKhiriev/go-todo-keeper/models"

// orderedTodos maps ids to todos and remembers insertion order.
// It is not safe for concurrent use.
type orderedTodos struct {
	order []models.TodoID
	items map[models.TodoID]models.Todo
}

func newOrderedTodos() *orderedTodos {
	return &orderedTodos{items: make(map[models.TodoID]models.Todo)}
}

// add appends todo. It reports false and changes nothing if the id is taken.
func (o *orderedTodos) add(todo models.Todo) bool {
	if _, ok := o.items[todo.ID]; ok {
		return false
	}
	o.items[todo.ID] = todo
	o.order = append(o.order, todo.ID)
	return true
}

// remove deletes the todo with id. It reports whether it was present.
func (o *orderedTodos) remove(id models.TodoID) bool {
	if _, ok := o.items[id]; !ok {
		return false
	}
	delete(o.items, id)
	for i, existing := range o.order {
		if existing == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

func (o *orderedTodos) get(id models.TodoID) (models.Todo, bool) {
	todo, ok := o.items[id]
	return todo, ok
}

// merge appends the todos whose ids are not present yet, keeping their
// order. Todos already held win over loaded ones, as does the first of
// several loaded todos sharing an id. It returns the counts of added and
// skipped todos.
func (o *orderedTodos) merge(todos []models.Todo) (added, skipped int) {
	for _, todo := range todos {
		if o.add(todo) {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped
}

func (o *orderedTodos) len() int {
	return len(o.order)
}

// values returns a copy of the todos in order.
func (o *orderedTodos) values() []models.Todo {
	out := make([]models.Todo, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.items[id])
	}
	return out
}

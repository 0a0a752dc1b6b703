package controllers

// PageStatus статус листинговой страницы. Страница живет в двух состояниях:
// loading -> ready либо loading -> error, и возвращается в loading на каждом
// триггере перезагрузки (открытие, сабмит фильтра, retry).
type PageStatus string

const (
	StatusIdle    PageStatus = "idle"
	StatusLoading PageStatus = "loading"
	StatusReady   PageStatus = "ready"
	StatusError   PageStatus = "error"
)

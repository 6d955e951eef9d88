package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook lọc log entries theo module (auth, content, social, report, ...)
// và theo log level. Entry bị lọc được đánh dấu bằng field "_filtered" để
// AsyncHook bỏ qua khi ghi.
type FilterHook struct {
	allowedModules  map[string]bool
	allowedLogTypes map[string]bool

	hasModuleFilter  bool
	hasLogTypeFilter bool

	mu sync.RWMutex
}

// NewFilterHook tạo một filter hook mới với cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{
		allowedModules:  make(map[string]bool),
		allowedLogTypes: make(map[string]bool),
	}
	hook.updateFilters(cfg)
	return hook
}

func (h *FilterHook) updateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedModules = parseFilter(cfg.FilterModules)
	h.hasModuleFilter = len(h.allowedModules) > 0 && !h.allowedModules["*"]

	h.allowedLogTypes = parseFilter(cfg.FilterLogTypes)
	h.hasLogTypeFilter = len(h.allowedLogTypes) > 0 && !h.allowedLogTypes["*"]
}

// parseFilter parse filter string dạng "value1,value2" thành map.
// Chuỗi rỗng hoặc "*" nghĩa là cho phép tất cả.
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	values := strings.Split(filterStr, ",")
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result[strings.ToLower(v)] = true
		}
	}

	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire được gọi mỗi khi có log entry mới.
// Entry không thỏa filter được đánh dấu "_filtered" = true.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.hasLogTypeFilter {
		levelStr := strings.ToLower(entry.Level.String())
		if !h.allowedLogTypes[levelStr] {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	if h.hasModuleFilter {
		// Entry không có field module thì vẫn cho phép log
		if module, ok := entry.Data["module"].(string); ok && module != "" {
			if !h.allowedModules[strings.ToLower(module)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	return nil
}

// UpdateFilters cập nhật filters từ config mới (có thể gọi runtime)
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.updateFilters(cfg)
}

package metrics

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// promauto registers against the default registry, so every test gets its
// own namespace to avoid duplicate registration.
var collectorNamespaceSeq uint64

func nextTestNamespace() string {
	seq := atomic.AddUint64(&collectorNamespaceSeq, 1)
	return fmt.Sprintf("test_%d", seq)
}

func TestNewCollector(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	assert.NotNil(t, collector)
	assert.NotNil(t, collector.httpRequestsTotal)
	assert.NotNil(t, collector.stageExecutionsTotal)
	assert.NotNil(t, collector.llmRequestsTotal)
	assert.NotNil(t, collector.cacheHits)
}

func TestCollectorRecordHTTPRequest(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.RecordHTTPRequest("POST", "/v1/estimates", 200, 100*time.Millisecond)
	collector.RecordHTTPRequest("POST", "/v1/estimates", 500, 50*time.Millisecond)

	count := testutil.CollectAndCount(collector.httpRequestsTotal)
	assert.Equal(t, 2, count)
}

func TestCollectorRecordStageExecution(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.RecordStageExecution("flight_search", true)
	collector.RecordStageExecution("flight_search", false)
	collector.ObserveStageDuration("flight_search", 0.42)

	assert.Equal(t, 2, testutil.CollectAndCount(collector.stageExecutionsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.stageExecutionDuration))
}

func TestCollectorRecordLLMRequest(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.RecordLLMRequest("openai", true, 0.5)

	assert.Greater(t, testutil.CollectAndCount(collector.llmRequestsTotal), 0)
	assert.Greater(t, testutil.CollectAndCount(collector.llmRequestDuration), 0)
}

func TestCollectorRecordCacheOperations(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.RecordCacheHit("transport_strategy")
	collector.RecordCacheMiss("flight_search")

	assert.Greater(t, testutil.CollectAndCount(collector.cacheHits), 0)
	assert.Greater(t, testutil.CollectAndCount(collector.cacheMisses), 0)
}

func TestCollectorRecordPlanningRequest(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	collector.RecordPlanningRequest(true, 2*time.Second)
	collector.RecordPlanningRequest(false, time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(collector.planningRequestsTotal))
}

func TestCollectorConcurrentRecording(t *testing.T) {
	collector := NewCollector(nextTestNamespace(), zap.NewNop())

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			collector.RecordStageExecution("hotel_search", true)
			collector.RecordLLMRequest("fallback", true, 0.01)
			collector.RecordCacheHit("hotel_search")
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Greater(t, testutil.CollectAndCount(collector.stageExecutionsTotal), 0)
	assert.Greater(t, testutil.CollectAndCount(collector.llmRequestsTotal), 0)
	assert.Greater(t, testutil.CollectAndCount(collector.cacheHits), 0)
}

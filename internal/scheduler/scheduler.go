package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// DisabledSpec은 keep-alive 작업을 등록하지 않는 설정값입니다.
const DisabledSpec = "off"

// probeTimeout은 keep-alive 조회 1건에 허용하는 시간입니다.
const probeTimeout = 30 * time.Second

// Prober는 원격 저장소가 응답하는지 확인합니다. (project.Store)
type Prober interface {
	Probe(ctx context.Context) error
}

// Scheduler는 원격 저장소 keep-alive 작업을 주기적으로 실행합니다.
// (무료 플랜 BaaS가 비활성으로 일시 정지되지 않도록 가벼운 조회를 보냄)
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	prober Prober
}

// NewScheduler는 새 Scheduler를 생성합니다. spec이 비었거나 "off"이면 아무 작업도 하지 않습니다.
func NewScheduler(spec string, prober Prober) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		spec:   strings.TrimSpace(spec),
		prober: prober,
	}
}

// Enabled는 keep-alive 작업이 등록되는지 여부입니다.
func (s *Scheduler) Enabled() bool {
	return s.spec != "" && !strings.EqualFold(s.spec, DisabledSpec) && s.prober != nil
}

// Start는 작업을 등록하고 스케줄러를 시작합니다.
func (s *Scheduler) Start() error {
	if !s.Enabled() {
		log.Info("keep-alive 스케줄러가 비활성화되어 있습니다.")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.keepAlive); err != nil {
		return err
	}
	s.cron.Start()
	log.Infof("keep-alive 스케줄러가 시작됩니다. (%s)", s.spec)
	return nil
}

// Stop은 스케줄러를 멈추고 실행 중인 작업이 끝날 때까지 기다립니다.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("keep-alive 스케줄러가 중지되었습니다.")
}

func (s *Scheduler) keepAlive() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	start := time.Now()
	if err := s.prober.Probe(ctx); err != nil {
		log.Errorf("[Scheduler] keep-alive 조회 실패: %v", err)
		return
	}
	log.Infof("[Scheduler] keep-alive 조회 성공 (%s)", time.Since(start).Round(time.Millisecond))
}

package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/application"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/institution"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/job"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/jobapplication"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/notification"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/student"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/transcript"
)

type fakeApplicationRepo struct {
	mu    sync.Mutex
	items map[common.UUID]application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[common.UUID]application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	r.items[app.ID] = app
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return &app, nil
}

func (r *fakeApplicationRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.items {
		if app.StudentID == studentID {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByInstitution(ctx context.Context, institutionID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.items {
		if app.InstitutionID == institutionID {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) CountActive(ctx context.Context, studentID, institutionID common.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, app := range r.items {
		if app.StudentID == studentID && app.InstitutionID == institutionID && app.Active() {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	r.items[id] = app
	return &app, nil
}

func (r *fakeApplicationRepo) CountByStatus(ctx context.Context) (map[application.Status]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[application.Status]int64)
	for _, app := range r.items {
		counts[app.Status]++
	}
	return counts, nil
}

type fakeInstitutionRepo struct {
	mu    sync.Mutex
	items map[common.UUID]institution.Institution
}

func newFakeInstitutionRepo() *fakeInstitutionRepo {
	return &fakeInstitutionRepo{items: make(map[common.UUID]institution.Institution)}
}

func (r *fakeInstitutionRepo) Create(ctx context.Context, inst institution.Institution) (*institution.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inst.ID == "" {
		inst.ID = common.NewUUID()
	}
	r.items[inst.ID] = inst
	return &inst, nil
}

func (r *fakeInstitutionRepo) GetByID(ctx context.Context, id common.UUID) (*institution.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "institution not found", nil)
	}
	return &inst, nil
}

func (r *fakeInstitutionRepo) List(ctx context.Context) ([]institution.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []institution.Institution
	for _, inst := range r.items {
		items = append(items, inst)
	}
	return items, nil
}

type fakeCourseRepo struct {
	mu    sync.Mutex
	items map[common.UUID]institution.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{items: make(map[common.UUID]institution.Course)}
}

func (r *fakeCourseRepo) Create(ctx context.Context, course institution.Course) (*institution.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if course.ID == "" {
		course.ID = common.NewUUID()
	}
	r.items[course.ID] = course
	return &course, nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id common.UUID) (*institution.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	course, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "course not found", nil)
	}
	return &course, nil
}

func (r *fakeCourseRepo) ListByInstitution(ctx context.Context, institutionID common.UUID) ([]institution.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []institution.Course
	for _, course := range r.items {
		if course.InstitutionID == institutionID {
			items = append(items, course)
		}
	}
	return items, nil
}

type fakeStudentRepo struct {
	mu    sync.Mutex
	items map[common.UUID]student.Profile
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{items: make(map[common.UUID]student.Profile)}
}

func (r *fakeStudentRepo) Upsert(ctx context.Context, profile student.Profile) (*student.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[profile.UserID] = profile
	return &profile, nil
}

func (r *fakeStudentRepo) GetByUserID(ctx context.Context, userID common.UUID) (*student.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.items[userID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "student profile not found", nil)
	}
	return &profile, nil
}

func (r *fakeStudentRepo) ListPage(ctx context.Context, afterID common.UUID, limit int) ([]student.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []student.Profile
	for _, profile := range r.items {
		if profile.UserID > afterID {
			all = append(all, profile)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeStudentRepo) GetByUserIDs(ctx context.Context, userIDs []common.UUID) (map[common.UUID]student.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profiles := make(map[common.UUID]student.Profile)
	for _, id := range userIDs {
		if profile, ok := r.items[id]; ok {
			profiles[id] = profile
		}
	}
	return profiles, nil
}

type fakeJobRepo struct {
	mu    sync.Mutex
	items map[common.UUID]job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{items: make(map[common.UUID]job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	r.items[j.ID] = j
	return &j, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, id common.UUID, deadline time.Time, isActive bool) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.Deadline = deadline
	j.IsActive = isActive
	j.UpdatedAt = time.Now().UTC()
	r.items[id] = j
	return &j, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return &j, nil
}

func (r *fakeJobRepo) ListActive(ctx context.Context, limit, offset int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.items {
		if j.IsActive {
			items = append(items, j)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.items {
		if j.CompanyID == companyID {
			items = append(items, j)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, j := range r.items {
		if j.IsActive && !j.Deadline.After(now) {
			j.IsActive = false
			r.items[id] = j
			count++
		}
	}
	return count, nil
}

func (r *fakeJobRepo) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, j := range r.items {
		if j.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeJobApplicationRepo struct {
	mu    sync.Mutex
	items map[common.UUID]jobapplication.JobApplication
}

func newFakeJobApplicationRepo() *fakeJobApplicationRepo {
	return &fakeJobApplicationRepo{items: make(map[common.UUID]jobapplication.JobApplication)}
}

func (r *fakeJobApplicationRepo) Create(ctx context.Context, app jobapplication.JobApplication) (*jobapplication.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.JobID == app.JobID && existing.StudentID == app.StudentID {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	r.items[app.ID] = app
	return &app, nil
}

func (r *fakeJobApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*jobapplication.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job application not found", nil)
	}
	return &app, nil
}

func (r *fakeJobApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]jobapplication.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []jobapplication.JobApplication
	for _, app := range r.items {
		if app.JobID == jobID {
			items = append(items, app)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].AppliedAt.Before(items[j].AppliedAt) })
	return items, nil
}

func (r *fakeJobApplicationRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]jobapplication.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []jobapplication.JobApplication
	for _, app := range r.items {
		if app.StudentID == studentID {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeJobApplicationRepo) FindByJobAndStudent(ctx context.Context, jobID, studentID common.UUID) (*jobapplication.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.items {
		if app.JobID == jobID && app.StudentID == studentID {
			found := app
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job application not found", nil)
}

func (r *fakeJobApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status jobapplication.Status) (*jobapplication.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	r.items[id] = app
	return &app, nil
}

type fakeTranscriptRepo struct {
	mu    sync.Mutex
	items map[common.UUID]transcript.Transcript
}

func newFakeTranscriptRepo() *fakeTranscriptRepo {
	return &fakeTranscriptRepo{items: make(map[common.UUID]transcript.Transcript)}
}

func (r *fakeTranscriptRepo) Add(ctx context.Context, t transcript.Transcript) (*transcript.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = common.NewUUID()
	if t.UploadedAt.IsZero() {
		t.UploadedAt = time.Now().UTC()
	}
	r.items[t.ID] = t
	return &t, nil
}

func (r *fakeTranscriptRepo) LatestByStudent(ctx context.Context, studentID common.UUID) (*transcript.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *transcript.Transcript
	for _, t := range r.items {
		if t.StudentID != studentID {
			continue
		}
		candidate := t
		if latest == nil || candidate.UploadedAt.After(latest.UploadedAt) {
			latest = &candidate
		}
	}
	if latest == nil {
		return nil, common.NewError(common.CodeNotFound, "no transcript on file", nil)
	}
	return latest, nil
}

func (r *fakeTranscriptRepo) LatestByStudents(ctx context.Context, studentIDs []common.UUID) (map[common.UUID]transcript.Transcript, error) {
	latest := make(map[common.UUID]transcript.Transcript)
	for _, id := range studentIDs {
		if t, err := r.LatestByStudent(ctx, id); err == nil {
			latest[id] = *t
		}
	}
	return latest, nil
}

func (r *fakeTranscriptRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]transcript.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []transcript.Transcript
	for _, t := range r.items {
		if t.StudentID == studentID {
			items = append(items, t)
		}
	}
	return items, nil
}

func (r *fakeTranscriptRepo) CountStudentsWithTranscript(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[common.UUID]bool)
	for _, t := range r.items {
		seen[t.StudentID] = true
	}
	return int64(len(seen)), nil
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	items   []notification.Notification
	failErr error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	if n.ID == "" {
		n.ID = common.NewUUID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	r.items = append(r.items, n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID common.UUID, limit int) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			items = append(items, n)
		}
	}
	return items, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for i, n := range r.items {
		if n.ID == id && n.UserID == userID {
			r.items[i].ReadAt = &now
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (r *fakeNotificationRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *fakeNotificationRepo) byKind(kind notification.Kind) []notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.Notification
	for _, n := range r.items {
		if n.Kind == kind {
			items = append(items, n)
		}
	}
	return items
}

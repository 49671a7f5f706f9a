package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/middleware"
	"nihongo_diary/internal/model"
	"nihongo_diary/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	username, password, email, nickname string
	role                                model.Role
}

type seedDiary struct {
	username string
	daysAgo  int
	title    string
	content  string
	isPublic bool
}

var seedDiaries = []seedDiary{
	{"user1", 1, "初めての日本語日記", "今日から日本語の勉強を始めました。最初は難しいですが、毎日少しずつ頑張ります。ひらがなとカタカナを覚えるのが目標です。", true},
	{"user1", 3, "カフェで勉強", "近くのカフェで日本語を勉強しました。静かな環境で集中できて良かったです。新しい単語を20個覚えました。", true},
	{"user1", 5, "難しい文法", "今日は助詞の使い方を勉強しました。「は」と「が」の違いが本当に難しいです。もっと練習が必要だと思います。", false},
	{"user1", 7, "週末の計画", "週末に日本のドラマを見る予定です。字幕なしで見るのはまだ難しいですが、挑戦してみます。", false},
	{"user2", 2, "日本料理を作った", "今日、初めて日本料理を作りました。簡単なお味噌汁と卵焼きです。美味しくできて嬉しかったです。次は肉じゃがに挑戦したいです。", true},
	{"user2", 4, "オンライン授業", "オンラインで日本語の授業を受けました。先生がとても優しくて、分かりやすく説明してくれました。会話の練習もできて良かったです。", true},
	{"user2", 6, "漢字が難しい", "漢字を覚えるのが本当に大変です。同じ漢字でも読み方がたくさんあって混乱します。毎日10個ずつ覚える練習をしています。", false},
	{"user3", 0, "今日の勉強", "今日は動詞の活用を勉強しました。て形とた形の作り方を練習しました。少しずつ慣れてきた気がします。明日も頑張ります！", true},
	{"user3", 2, "日本の音楽", "最近、日本の音楽をよく聞いています。歌詞を読みながら聞くと、新しい表現を学べて楽しいです。おすすめの歌があれば教えてください。", true},
	{"user3", 8, "友達と日本語で話した", "今日、日本人の友達と日本語だけで会話しました。まだ完璧ではありませんが、楽しくコミュニケーションできました。もっと上手になりたいです。", true},
}

var seedVocabularies = []model.Vocabulary{
	{Word: "隣人", Hiragana: "りんじん", Meaning: "neighbor", ExampleSentence: "隣人の迷惑にならないように気をつけましょう。", ExampleTranslation: "Let's be careful not to bother the neighbors.", StudyStatus: model.StudyStatusCompleted},
	{Word: "日記", Hiragana: "にっき", Meaning: "diary", ExampleSentence: "毎晩日記を書きます。", ExampleTranslation: "I write in my diary every night.", StudyStatus: model.StudyStatusNotStudied},
	{Word: "難しい", Hiragana: "むずかしい", Meaning: "difficult", ExampleSentence: "この問題は難しいです。", ExampleTranslation: "This problem is difficult.", StudyStatus: model.StudyStatusStudying},
	{Word: "助詞", Hiragana: "じょし", Meaning: "particle", ExampleSentence: "日本語の助詞は複雑です。", ExampleTranslation: "Japanese particles are complicated.", StudyStatus: model.StudyStatusStudying},
	{Word: "字幕", Hiragana: "じまく", Meaning: "subtitles", ExampleSentence: "字幕なしでドラマを見ます。", ExampleTranslation: "I watch dramas without subtitles.", StudyStatus: model.StudyStatusNotStudied},
	{Word: "挑戦", Hiragana: "ちょうせん", Meaning: "challenge", ExampleSentence: "新しいことに挑戦します。", ExampleTranslation: "I take on new challenges.", StudyStatus: model.StudyStatusNotStudied},
}

// DevSeeder は開発環境用のサンプルデータを投入します。何度実行しても同じ結果になります。
type DevSeeder struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	diaryRepo repository.DiaryRepository
	vocabRepo repository.VocabularyRepository
	quizRepo  repository.QuizWordRepository
	importer  JlptImportService
	cfg       *config.Config
	now       func() time.Time
}

func NewDevSeeder(db *gorm.DB, userRepo repository.UserRepository, diaryRepo repository.DiaryRepository, vocabRepo repository.VocabularyRepository, quizRepo repository.QuizWordRepository, importer JlptImportService, cfg *config.Config) *DevSeeder {
	return &DevSeeder{
		db:        db,
		userRepo:  userRepo,
		diaryRepo: diaryRepo,
		vocabRepo: vocabRepo,
		quizRepo:  quizRepo,
		importer:  importer,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *DevSeeder) Run(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.seedDiaries(ctx); err != nil {
		return fmt.Errorf("seed diaries: %w", err)
	}
	if err := s.seedVocabularies(ctx); err != nil {
		return fmt.Errorf("seed vocabularies: %w", err)
	}
	// JLPT単語の読み込み失敗で起動は止めない
	if err := s.seedQuizWords(ctx); err != nil {
		logger.Warn("Failed to load JLPT words", "error", err)
	}

	logger.Info("Dev seed data ready")
	return nil
}

func (s *DevSeeder) seedUsers(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	users := []seedUser{{"admin", "admin123!", "admin@nihongo.com", "管理者", model.RoleAdmin}}
	for i := 1; i <= 5; i++ {
		users = append(users, seedUser{
			username: fmt.Sprintf("user%d", i),
			password: "user123!",
			email:    fmt.Sprintf("user%d@test.com", i),
			nickname: fmt.Sprintf("ユーザー%d", i),
			role:     model.RoleUser,
		})
	}

	for _, u := range users {
		exists, err := s.userRepo.ExistsByUsername(ctx, s.db, u.username)
		if err != nil {
			return err
		}
		if exists {
			logger.Debug("Account already exists, skipping", "username", u.username)
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &model.User{
			ID:       uuid.New(),
			Username: u.username,
			Password: string(hashed),
			Email:    u.email,
			Nickname: u.nickname,
			Role:     u.role,
			Status:   model.UserStatusActive,
		}
		if err := s.userRepo.Create(ctx, s.db, user); err != nil {
			return err
		}
		logger.Info("User created", "username", u.username, "nickname", u.nickname)
	}
	return nil
}

func (s *DevSeeder) seedDiaries(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	owners := make(map[string]*model.User)
	created := 0
	for _, d := range seedDiaries {
		owner, ok := owners[d.username]
		if !ok {
			u, err := s.userRepo.FindByUsername(ctx, s.db, d.username)
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Skipping diary generation: user does not exist", "username", d.username)
				continue
			}
			if err != nil {
				return err
			}
			owners[d.username] = u
			owner = u
		}

		date := today.AddDate(0, 0, -d.daysAgo)
		exists, err := s.diaryRepo.ExistsByUserAndDate(ctx, s.db, owner.ID, date)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		diary := &model.Diary{
			ID:        uuid.New(),
			UserID:    owner.ID,
			DiaryDate: date,
			Title:     d.title,
			Content:   d.content,
			IsPublic:  d.isPublic,
		}
		if err := s.diaryRepo.Create(ctx, s.db, diary); err != nil {
			return err
		}
		created++
	}

	logger.Info("Sample diary generation completed", "created", created)
	return nil
}

func (s *DevSeeder) seedVocabularies(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	user1, err := s.userRepo.FindByUsername(ctx, s.db, "user1")
	if errors.Is(err, model.ErrNotFound) {
		logger.Warn("Skipping vocabulary generation: user does not exist")
		return nil
	}
	if err != nil {
		return err
	}

	existing, err := s.vocabRepo.FindByUser(ctx, s.db, user1.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Debug("Vocabulary already exists, skipping")
		return nil
	}

	for _, v := range seedVocabularies {
		vocab := v
		vocab.ID = uuid.New()
		vocab.UserID = user1.ID
		if err := s.vocabRepo.Create(ctx, s.db, &vocab); err != nil {
			return err
		}
	}
	logger.Info("Vocabulary test data generation completed", "count", len(seedVocabularies))
	return nil
}

func (s *DevSeeder) seedQuizWords(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	count, err := s.quizRepo.CountAllJlpt(ctx, s.db)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Quiz words already exist, skipping", "count", count)
		return nil
	}

	results, err := s.importer.ImportDirectory(ctx, s.cfg.App.JlptDataDir)
	for _, r := range results {
		logger.Info("JLPT words loaded", "level", r.Level, "imported", r.Imported, "skipped", r.Skipped)
	}
	return err
}
